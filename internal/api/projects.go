// SPDX-License-Identifier: Apache-2.0

// Package api implements the HTTP API endpoints served by `cm serve`.
// It exposes the discovered Cargo projects as JSON.
package api

import (
	"encoding/json"
	"net/http"

	"crate-manager/internal/discovery"
	"crate-manager/internal/logger"

	"github.com/gorilla/mux"
)

// projectPayload is the wire form of a discovered project.
type projectPayload struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Path            string `json:"path"`
	BuildOutputPath string `json:"build_output_path"`
}

func toPayload(p discovery.Project) projectPayload {
	return projectPayload{
		Name:            p.Name,
		Description:     p.Description,
		Path:            p.Path,
		BuildOutputPath: p.BuildOutputPath(),
	}
}

// RegisterProjectRoutes attaches the project endpoints to the router.
func RegisterProjectRoutes(router *mux.Router) {
	router.HandleFunc("/api/projects", handleListProjects).Methods(http.MethodGet)
	router.HandleFunc("/api/projects/{name}", handleGetProject).Methods(http.MethodGet)
}

// writeJSONResponse writes a JSON response with CORS headers.
func writeJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSONResponse(w, status, map[string]string{"error": msg})
}

func handleListProjects(w http.ResponseWriter, r *http.Request) {
	rootDir, err := discovery.GetProjectsRootDirectory()
	if err != nil {
		logger.Error("Projects root lookup failed for API request", "error", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	projects, err := discovery.FindProjects(rootDir)
	if err != nil {
		logger.Error("Project scan failed for API request", "root_dir", rootDir, "error", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payloads := make([]projectPayload, 0, len(projects))
	for _, p := range projects {
		payloads = append(payloads, toPayload(p))
	}

	writeJSONResponse(w, http.StatusOK, payloads)
}

func handleGetProject(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	project, err := discovery.FindProjectByName(name)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, toPayload(project))
}
