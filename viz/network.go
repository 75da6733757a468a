// ABOUTME: Graphviz network rendering for the contact graph
// ABOUTME: Company org charts and event attendance maps as DOT output
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/paradiigm/cardstack/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(s *store.Store) *GraphGenerator {
	return &GraphGenerator{store: s}
}

// GenerateCompanyGraph renders companies and the contacts attached to them.
// A non-empty companyID restricts the graph to that single company.
func (g *GraphGenerator) GenerateCompanyGraph(companyID string) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.TBRank)

	for _, company := range g.store.Companies() {
		if companyID != "" && company.ID != companyID {
			continue
		}

		companyNode, err := graph.CreateNodeByName(company.Name)
		if err != nil {
			return "", fmt.Errorf("failed to create company node: %w", err)
		}
		companyNode.SetShape(cgraph.BoxShape)

		for _, contact := range g.store.ContactsByCompanyID(company.ID) {
			contactNode, err := graph.CreateNodeByName(contact.Name)
			if err != nil {
				return "", fmt.Errorf("failed to create contact node: %w", err)
			}

			edge, err := graph.CreateEdgeByName("", companyNode, contactNode)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			if contact.Role != "" {
				edge.SetLabel(contact.Role)
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}

// GenerateEventGraph renders events and the contacts linked to them, with
// edges labeled by event role.
func (g *GraphGenerator) GenerateEventGraph() (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLayout("neato")

	eventNodes := make(map[string]*cgraph.Node)
	for _, event := range g.store.Events() {
		node, err := graph.CreateNodeByName(event.Name)
		if err != nil {
			return "", fmt.Errorf("failed to create event node: %w", err)
		}
		node.SetShape(cgraph.BoxShape)
		eventNodes[event.ID] = node
	}

	for _, contact := range g.store.Contacts() {
		if len(contact.EventLinks) == 0 {
			continue
		}

		contactNode, err := graph.CreateNodeByName(contact.Name)
		if err != nil {
			return "", fmt.Errorf("failed to create contact node: %w", err)
		}

		for _, link := range contact.EventLinks {
			eventNode, ok := eventNodes[link.EventID]
			if !ok {
				continue
			}
			edge, err := graph.CreateEdgeByName("", contactNode, eventNode)
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel(string(link.Role))
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}
