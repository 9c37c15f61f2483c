package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// APIVersion represents API version information
type APIVersion struct {
	Version string `json:"version"`
	Status  string `json:"status"` // "active", "deprecated"
	Message string `json:"message,omitempty"`
}

// VersionMiddleware provides API versioning functionality
type VersionMiddleware struct {
	supportedVersions map[string]APIVersion
	defaultVersion    string
}

// NewVersionMiddleware creates a new version middleware instance
func NewVersionMiddleware() *VersionMiddleware {
	supportedVersions := map[string]APIVersion{
		"v1": {
			Version: "v1",
			Status:  "active",
			Message: "Current stable API version",
		},
	}

	return &VersionMiddleware{
		supportedVersions: supportedVersions,
		defaultVersion:    "v1",
	}
}

// VersionHeader adds version information to response headers
func (vm *VersionMiddleware) VersionHeader(version string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-API-Version", version)
			if ver, exists := vm.supportedVersions[version]; exists {
				c.Response().Header().Set("X-API-Message", ver.Message)
			}
			return next(c)
		}
	}
}

// APIVersionResolver resolves the API version from the request path
func (vm *VersionMiddleware) APIVersionResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			version := vm.extractVersionFromPath(c.Request().URL.Path)
			if version != "" {
				if _, supported := vm.supportedVersions[version]; !supported {
					return c.JSON(http.StatusNotFound, map[string]string{
						"error":              "Unsupported API version",
						"supported_versions": strings.Join(vm.getSupportedVersions(), ", "),
					})
				}
				c.Set("api_version", version)
			} else {
				c.Set("api_version", vm.defaultVersion)
			}
			return next(c)
		}
	}
}

// extractVersionFromPath extracts the API version from the URL path
func (vm *VersionMiddleware) extractVersionFromPath(path string) string {
	if len(path) >= 3 && path[0] == '/' && path[1] == 'v' {
		if versionNum, err := strconv.Atoi(path[2:3]); err == nil && versionNum > 0 {
			return "v" + strconv.Itoa(versionNum)
		}
	}
	return ""
}

func (vm *VersionMiddleware) getSupportedVersions() []string {
	var versions []string
	for version, info := range vm.supportedVersions {
		if info.Status == "active" || info.Status == "deprecated" {
			versions = append(versions, version)
		}
	}
	return versions
}
