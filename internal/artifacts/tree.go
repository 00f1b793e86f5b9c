package artifacts

import "github.com/mobiforge-labs/mobiforge/internal/scaffold"

// DefaultTree is the recommended subdirectory structure for the generated
// repository. Order matches the documented layout; expansion does not depend
// on it.
var DefaultTree = scaffold.TreeSpec{
	{RelPath: "core/", Description: "Core autonomous venture studio components"},
	{RelPath: "businesses/", Description: "Business entity implementations and configurations"},
	{RelPath: "integrations/", Description: "External system integrations and APIs"},
	{RelPath: "dashboards/", Description: "Monitoring and control dashboards"},
	{RelPath: "research/", Description: "Research processing components and data"},
	{RelPath: "mobile/", Description: "Mobile-specific optimizations and configurations"},
	{RelPath: "api/", Description: "REST API endpoints and services"},
	{RelPath: "docs/", Description: "Documentation and setup guides"},
	{RelPath: "scripts/", Description: "Automation and deployment scripts"},
	{RelPath: "config/", Description: "Configuration files and settings"},
	{RelPath: "data/", Description: "Data storage and processing"},
	{RelPath: "logs/", Description: "System logs and monitoring data"},
}
