package bridgecheck

import (
	"fmt"
	"go/types"
	"strings"
)

// Outcome classifies one symbol of the compatibility surface.
type Outcome string

const (
	// OutcomeAliased: the bridge re-exports the symbol from the new module.
	OutcomeAliased Outcome = "aliased"
	// OutcomeKept: the bridge still declares the symbol locally.
	OutcomeKept Outcome = "kept"
	// OutcomeMissing: the old release exported the symbol, the bridge does not.
	OutcomeMissing Outcome = "missing"
	// OutcomeAdded: the new module exports a symbol with no old-path name.
	OutcomeAdded Outcome = "added"
)

// Finding is the checker's verdict for a single type.
type Finding struct {
	Symbol  string  `json:"symbol"`
	Outcome Outcome `json:"outcome"`
	Target  string  `json:"target,omitempty"`
	Problem string  `json:"problem,omitempty"`
}

// Check compares the three snapshot surfaces. old may be nil, in which
// case the coverage pass is skipped and only the bridge's re-exports
// and the new module's additions are examined.
func Check(old, bridge, next *Surface) *Report {
	r := &Report{
		BridgeModule: bridge.Module,
		NewModule:    next.Module,
	}
	if old != nil {
		r.OldModule = old.Module
	}

	// Refs in the new module that a bridge alias lands on. Used to keep
	// relocated types out of the additions list.
	aliasTargets := make(map[TypeRef]bool)

	for _, ref := range bridge.Refs() {
		tn := bridge.Types[ref]
		if !tn.IsAlias() {
			r.Findings = append(r.Findings, Finding{Symbol: ref.String(), Outcome: OutcomeKept})
			continue
		}

		finding := Finding{Symbol: ref.String(), Outcome: OutcomeAliased}
		// Alias chains resolve to the real declaration; TypeName.Type
		// returns the type with aliases already resolved here.
		named, ok := tn.Type().(*types.Named)
		if !ok {
			finding.Problem = fmt.Sprintf("alias resolves to %s, not a declared type", tn.Type())
			r.Findings = append(r.Findings, finding)
			continue
		}

		target := named.Obj()
		if target.Pkg() == nil {
			finding.Problem = "alias resolves to a universe type"
			r.Findings = append(r.Findings, finding)
			continue
		}
		targetPath := target.Pkg().Path()
		finding.Target = targetPath + "." + target.Name()

		if !inModule(next.Module, targetPath) {
			finding.Problem = fmt.Sprintf("alias resolves outside %s", next.Module)
			r.Findings = append(r.Findings, finding)
			continue
		}

		rel, _ := relPath(next.Module, targetPath)
		targetRef := TypeRef{RelPath: rel, Name: target.Name()}
		if _, ok := next.Types[targetRef]; !ok {
			finding.Problem = fmt.Sprintf("alias target %s is not part of the new module's importable surface", finding.Target)
			r.Findings = append(r.Findings, finding)
			continue
		}

		aliasTargets[targetRef] = true
		r.Findings = append(r.Findings, finding)
	}

	if old != nil {
		for _, ref := range old.Refs() {
			if _, ok := bridge.Types[ref]; ok {
				continue
			}
			r.Findings = append(r.Findings, Finding{
				Symbol:  ref.String(),
				Outcome: OutcomeMissing,
				Problem: "exported by the old release but absent from the bridge",
			})
		}
	}

	for _, ref := range next.Refs() {
		if aliasTargets[ref] {
			continue
		}
		// A ref the old release or the bridge already exports is not an
		// addition. Checking the bridge too keeps every symbol down to
		// a single finding even when an alias goes astray instead of
		// landing on its intended target.
		if old != nil {
			if _, ok := old.Types[ref]; ok {
				continue
			}
		}
		if _, ok := bridge.Types[ref]; ok {
			continue
		}
		r.Findings = append(r.Findings, Finding{Symbol: ref.String(), Outcome: OutcomeAdded})
	}

	return r
}

func inModule(modPath, pkgPath string) bool {
	return pkgPath == modPath || strings.HasPrefix(pkgPath, modPath+"/")
}
