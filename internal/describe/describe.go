// Package describe produces the one-line service description printed on a
// generated document. The default generator rotates through a canned list of
// software project descriptions; an OpenAI-backed generator can replace it
// when an API key is configured.
package describe

import (
	"context"
	"math/rand"
)

// Generator produces a transaction description for a document.
type Generator interface {
	Describe(ctx context.Context) (string, error)
}

// Software project descriptions paired with a product name suffix.
var projectDescriptions = []string{
	"Development of custom inventory management system",
	"Mobile application development for customer engagement",
	"Web portal implementation for client management",
	"E-commerce platform development with payment integration",
	"Business intelligence dashboard implementation",
	"Custom CRM system development and integration",
	"API development for third-party service integration",
	"Software maintenance and performance optimization",
	"Legacy system modernization and migration",
	"Cloud migration and infrastructure setup",
	"Enterprise resource planning system implementation",
	"Customer service ticketing system development",
	"Accounting software customization",
	"HR management system development",
	"E-learning platform development and integration",
	"Real-time messaging application development",
	"Project management software implementation",
	"Data visualization dashboard development",
	"Automated reporting system implementation",
	"Membership management portal development",
	"Online booking system implementation",
	"Fleet management software development",
	"Restaurant management system implementation",
	"Inventory tracking software development",
	"Point of sale system implementation",
}

var productNames = []string{
	"ProAccess",
	"SmartFlow",
	"DataVista",
	"NexusCore",
	"OmniTrack",
	"InteliServe",
	"PrimeSoft",
	"MetaLogic",
	"OptiSphere",
	"VisiTech",
	"SyncWave",
	"PrecisionPro",
	"TotalSphere",
	"EnterLogic",
	"MaxiTech",
	"PowerPortal",
	"SmartPulse",
	"EliteServe",
	"SyncMatrix",
	"TechEdge",
}

// CannedGenerator picks a random project description and product name from
// the built-in lists. It never fails.
type CannedGenerator struct {
	rand *rand.Rand
}

// NewCannedGenerator creates a canned description generator seeded from the
// given source, or the default source when seed is nil.
func NewCannedGenerator(r *rand.Rand) *CannedGenerator {
	return &CannedGenerator{rand: r}
}

// Describe returns a random "<description> - <product> System" line.
func (g *CannedGenerator) Describe(_ context.Context) (string, error) {
	var di, pi int
	if g.rand != nil {
		di = g.rand.Intn(len(projectDescriptions))
		pi = g.rand.Intn(len(productNames))
	} else {
		di = rand.Intn(len(projectDescriptions))
		pi = rand.Intn(len(productNames))
	}
	return projectDescriptions[di] + " - " + productNames[pi] + " System", nil
}
