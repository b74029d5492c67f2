// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"net/http"

	"crate-manager/internal/api"
	"crate-manager/internal/logger"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project listing as a JSON API",
	Long: `Starts an HTTP server exposing the discovered Cargo projects:

  GET /api/projects          all projects
  GET /api/projects/{name}   a single project by declared name`,
	Run: func(cmd *cobra.Command, args []string) {
		router := mux.NewRouter()
		api.RegisterProjectRoutes(router)

		addr := fmt.Sprintf(":%d", servePort)
		fmt.Printf("Starting API server on %s\n", addr)
		if err := http.ListenAndServe(addr, router); err != nil {
			logger.Error("API server failed", "addr", addr, "error", err)
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
