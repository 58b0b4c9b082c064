package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkwell-run/cardtree/pkg/entity"
	"github.com/inkwell-run/cardtree/pkg/route"
)

// routeFile is the on-disk shape of a routes.yaml file: a flat list of
// card/tool declarations, each given a fresh entity.ID at load time.
type routeFile struct {
	Routes []struct {
		Kind    string `yaml:"kind"` // "card" or "tool"
		Pattern string `yaml:"pattern"`
		Method  string `yaml:"method"`
	} `yaml:"routes"`
}

func loadRouteNodes(path string) ([]route.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route file: %w", err)
	}
	var rf routeFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing route file: %w", err)
	}

	nodes := make([]route.Node, 0, len(rf.Routes))
	for _, r := range rf.Routes {
		pattern, err := route.ParsePattern(r.Pattern)
		if err != nil {
			return nil, err
		}
		n := route.Node{Entity: entity.NewID(), Pattern: pattern, Method: r.Method}
		switch strings.ToLower(r.Kind) {
		case "tool":
			n.Kind = route.KindTool
		case "card":
			n.Kind = route.KindCard
		default:
			return nil, fmt.Errorf("route %q: unknown kind %q (want card or tool)", r.Pattern, r.Kind)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Inspect or serve a route tree described by a routes.yaml file",
}

var routeCheckCmd = &cobra.Command{
	Use:   "check ROUTES_FILE",
	Short: "Validate a routes.yaml file and print the flattened tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := loadRouteNodes(args[0])
		if err != nil {
			return err
		}
		tree, err := route.FromNodes(nodes, nil)
		if err != nil {
			return err
		}
		for _, n := range tree.Flatten() {
			fmt.Printf("%-6s %s\n", kindLabel(n.Kind), n.Pattern.String())
		}
		return nil
	},
}

func kindLabel(k route.Kind) string {
	if k == route.KindTool {
		return "tool"
	}
	return "card"
}

var routeServeAddr string

var routeServeCmd = &cobra.Command{
	Use:   "serve ROUTES_FILE",
	Short: "Mount a routes.yaml file's tool routes on a gin server and listen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := loadRouteNodes(args[0])
		if err != nil {
			return err
		}
		tree, err := route.FromNodes(nodes, nil)
		if err != nil {
			return err
		}

		handlers := map[string]route.Handler{}
		for _, n := range tree.FlattenToolNodes() {
			handlers[string(n.Entity)] = func(c *gin.Context, n *route.Node, params map[string]string) {
				c.JSON(200, gin.H{"pattern": n.Pattern.String(), "params": params})
			}
		}

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		engine.Use(gin.Recovery())
		route.Mount(&engine.RouterGroup, tree, handlers)

		fmt.Printf("listening on %s\n", routeServeAddr)
		return engine.Run(routeServeAddr)
	},
}

func init() {
	routeServeCmd.Flags().StringVar(&routeServeAddr, "addr", ":8080", "listen address")
	routeCmd.AddCommand(routeCheckCmd, routeServeCmd)
	rootCmd.AddCommand(routeCmd)
}
