// Package framework maps dependency names to FrameworkInfo records via
// fixed, per-language tables, following python.rs's detect_frameworks shape
// generalized across languages.
package framework

import "github.com/sumatoshi-tech/projectdetect/pkg/detector/model"

// entry is one row of a framework table: the dependency name that implies
// the framework, and the FrameworkInfo to emit as-is (its ConfigPath stays
// empty).
type entry struct {
	dependencyName string
	info           model.FrameworkInfo
}

// DetectFromDependencies scans runtime and dev dependency names against
// table and returns one FrameworkInfo per match, in table order.
func DetectFromDependencies(table []entry, deps []model.DependencyInfo) []model.FrameworkInfo {
	present := make(map[string]struct{}, len(deps))
	for _, d := range deps {
		present[d.Name] = struct{}{}
	}

	var found []model.FrameworkInfo

	for _, e := range table {
		if _, ok := present[e.dependencyName]; ok {
			found = append(found, e.info)
		}
	}

	return found
}

// PythonTable is python.rs::detect_frameworks ported to the shared model.
var PythonTable = []entry{
	{
		dependencyName: "django",
		info: model.FrameworkInfo{
			Name:         "Django",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityORM},
			Confidence:   0.9,
			SuggestedCommands: []model.Command{
				{Name: "runserver", Description: "Run the development server", CommandLine: "python manage.py runserver", WhenToUse: "local development"},
				{Name: "migrate", Description: "Apply database migrations", CommandLine: "python manage.py migrate", WhenToUse: "after model changes"},
			},
		},
	},
	{
		dependencyName: "flask",
		info: model.FrameworkInfo{
			Name:         "Flask",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.85,
			SuggestedCommands: []model.Command{
				{Name: "run", Description: "Run the Flask development server", CommandLine: "flask run", WhenToUse: "local development"},
			},
		},
	},
	{
		dependencyName: "fastapi",
		info: model.FrameworkInfo{
			Name:         "FastAPI",
			Capabilities: []model.Capability{model.CapabilityAPI, model.CapabilityMicroservice},
			Confidence:   0.9,
			SuggestedCommands: []model.Command{
				{Name: "dev", Description: "Run with live reload", CommandLine: "uvicorn main:app --reload", WhenToUse: "local development"},
			},
		},
	},
	{
		dependencyName: "streamlit",
		info: model.FrameworkInfo{
			Name:         "Streamlit",
			Capabilities: []model.Capability{model.CapabilityDataScience, model.CapabilityWebServer},
			Confidence:   0.85,
			SuggestedCommands: []model.Command{
				{Name: "run", Description: "Run the Streamlit app", CommandLine: "streamlit run app.py", WhenToUse: "local development"},
			},
		},
	},
	{
		dependencyName: "jupyter",
		info: model.FrameworkInfo{
			Name:         "Jupyter",
			Capabilities: []model.Capability{model.CapabilityNotebook, model.CapabilityDataScience},
			Confidence:   0.8,
			SuggestedCommands: []model.Command{
				{Name: "lab", Description: "Start JupyterLab", CommandLine: "jupyter lab", WhenToUse: "interactive exploration"},
			},
		},
	},
	{
		dependencyName: "pytest",
		info: model.FrameworkInfo{
			Name:         "Pytest",
			Capabilities: []model.Capability{model.CapabilityTesting},
			Confidence:   0.8,
			SuggestedCommands: []model.Command{
				{Name: "test", Description: "Run the test suite", CommandLine: "pytest", WhenToUse: "before committing"},
			},
		},
	},
}

// JavaScriptTable covers frontend/backend frameworks common to both
// JavaScript and TypeScript analyzers.
var JavaScriptTable = []entry{
	{
		dependencyName: "react",
		info: model.FrameworkInfo{
			Name:         "React",
			Capabilities: []model.Capability{model.CapabilitySPAFrontend},
			Confidence:   0.85,
		},
	},
	{
		dependencyName: "vue",
		info: model.FrameworkInfo{
			Name:         "Vue",
			Capabilities: []model.Capability{model.CapabilitySPAFrontend},
			Confidence:   0.85,
		},
	},
	{
		dependencyName: "next",
		info: model.FrameworkInfo{
			Name:         "Next.js",
			Capabilities: []model.Capability{model.CapabilitySPAFrontend, model.CapabilityStaticSite, model.CapabilityWebServer},
			Confidence:   0.9,
			SuggestedCommands: []model.Command{
				{Name: "dev", Description: "Run the Next.js dev server", CommandLine: "next dev", WhenToUse: "local development"},
			},
		},
	},
	{
		dependencyName: "express",
		info: model.FrameworkInfo{
			Name:         "Express",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.85,
		},
	},
	{
		dependencyName: "vite",
		info: model.FrameworkInfo{
			Name:         "Vite",
			Capabilities: []model.Capability{model.CapabilityBundler},
			Confidence:   0.75,
		},
	},
}

// RustTable maps Cargo dependency names to web/CLI framework detections.
var RustTable = []entry{
	{
		dependencyName: "axum",
		info: model.FrameworkInfo{
			Name:         "Axum",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.9,
		},
	},
	{
		dependencyName: "actix-web",
		info: model.FrameworkInfo{
			Name:         "Actix Web",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.9,
		},
	},
	{
		dependencyName: "clap",
		info: model.FrameworkInfo{
			Name:         "Clap",
			Capabilities: []model.Capability{model.CapabilityCLI},
			Confidence:   0.8,
		},
	},
}

// JavaTable maps Maven/Gradle artifact coordinates to Java framework
// detections. Matched by substring search over the raw pom.xml/build.gradle
// content, so a name matches anywhere in the file, not only as an artifactId.
var JavaTable = []entry{
	{
		dependencyName: "spring-boot-starter",
		info: model.FrameworkInfo{
			Name:         "Spring Boot",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.9,
			SuggestedCommands: []model.Command{
				{Name: "run", Description: "Run the Spring Boot application", CommandLine: "mvn spring-boot:run", WhenToUse: "local development"},
			},
		},
	},
	{
		dependencyName: "quarkus",
		info: model.FrameworkInfo{
			Name:         "Quarkus",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityMicroservice},
			Confidence:   0.85,
		},
	},
	{
		dependencyName: "micronaut",
		info: model.FrameworkInfo{
			Name:         "Micronaut",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityMicroservice},
			Confidence:   0.85,
		},
	},
	{
		dependencyName: "junit",
		info: model.FrameworkInfo{
			Name:         "JUnit",
			Capabilities: []model.Capability{model.CapabilityTesting},
			Confidence:   0.8,
		},
	},
}

// GoTable maps go.mod dependency import paths to Go web framework
// detections.
var GoTable = []entry{
	{
		dependencyName: "github.com/gin-gonic/gin",
		info: model.FrameworkInfo{
			Name:         "Gin",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.9,
		},
	},
	{
		dependencyName: "github.com/labstack/echo/v4",
		info: model.FrameworkInfo{
			Name:         "Echo",
			Capabilities: []model.Capability{model.CapabilityWebServer, model.CapabilityAPI},
			Confidence:   0.9,
		},
	},
	{
		dependencyName: "github.com/spf13/cobra",
		info: model.FrameworkInfo{
			Name:         "Cobra",
			Capabilities: []model.Capability{model.CapabilityCLI},
			Confidence:   0.8,
		},
	},
}
