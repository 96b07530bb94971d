package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mcprunner "tableflip.dev/daybook/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command, e *env) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to MCP clients.",
		Long: `Start a Model Context Protocol server with tools to read and update days
and both lists. By default it speaks over stdio, which is what most clients
launch. Use --transport http to serve the streamable HTTP transport instead.

Logs go to stderr so they never mix with the stdio protocol.`,
		Example: `
daybook mcp
daybook mcp --transport http --http-port 8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			t := mcprunner.Transport(strings.ToLower(strings.TrimSpace(transport)))
			switch t {
			case mcprunner.TransportStdio, mcprunner.TransportHTTP:
			default:
				return fmt.Errorf("unknown transport %q, want stdio or http", transport)
			}

			j, err := e.open()
			if err != nil {
				return err
			}
			r := mcprunner.Runner{
				Journal:          j,
				Name:             "daybook",
				Version:          "dev",
				Transport:        t,
				HTTPListenAddr:   net.JoinHostPort(httpHost, strconv.Itoa(httpPort)),
				HTTPEndpointPath: httpPath,
				OnHTTPListening: func(addr net.Addr) {
					e.log.Info("serving MCP over HTTP",
						"url", fmt.Sprintf("http://%s%s", addr, mcprunner.EndpointPath(httpPath)))
				},
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcprunner.TransportStdio), "Transport to serve: stdio or http.")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "Host to listen on with --transport http.")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "Port to listen on with --transport http.")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "Endpoint path with --transport http.")
	_ = cmd.RegisterFlagCompletionFunc("transport", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(mcprunner.TransportStdio), string(mcprunner.TransportHTTP)}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
