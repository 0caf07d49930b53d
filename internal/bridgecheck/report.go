package bridgecheck

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the full result of checking a bridge release.
type Report struct {
	OldModule     string    `json:"old_module,omitempty"`
	BridgeModule  string    `json:"bridge_module"`
	NewModule     string    `json:"new_module"`
	GraphProblems []string  `json:"graph_problems,omitempty"`
	Findings      []Finding `json:"findings"`
}

// Breaking returns the findings a bridge release must not have: old
// symbols that vanished and re-exports that do not land where they
// should.
func (r *Report) Breaking() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Outcome == OutcomeMissing || f.Problem != "" {
			out = append(out, f)
		}
	}
	return out
}

// Ok reports whether the bridge holds: no breaking findings and a sound
// module graph.
func (r *Report) Ok() bool {
	return len(r.Breaking()) == 0 && len(r.GraphProblems) == 0
}

// Render writes the report in human-readable form.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "bridge %s -> %s\n", r.BridgeModule, r.NewModule); err != nil {
		return err
	}

	for _, problem := range r.GraphProblems {
		if _, err := fmt.Fprintf(w, "  graph    %s\n", problem); err != nil {
			return err
		}
	}

	for _, f := range r.Findings {
		line := fmt.Sprintf("  %-8s %s", f.Outcome, f.Symbol)
		if f.Target != "" {
			line += " -> " + f.Target
		}
		if f.Problem != "" {
			line += " !! " + f.Problem
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	breaking := len(r.Breaking()) + len(r.GraphProblems)
	status := "ok"
	if breaking > 0 {
		status = "broken"
	}
	_, err := fmt.Fprintf(w, "%s: %d symbols, %d breaking\n", status, len(r.Findings), breaking)
	return err
}

// RenderJSON writes the report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
