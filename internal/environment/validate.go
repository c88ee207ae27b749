package environment

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"ofremap/internal/common"
	"ofremap/internal/diagnostic"
)

// Validate checks env for every input a transformer needs and reports all
// problems at once. mappingID names the required rename service.
func Validate(env Environment, mappingID string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if mods, err := RequireModList(env); err != nil {
		res.AddError("missing_modlist", err.Error(), ModList.Name())
	} else {
		res.AddInfo("modlist", fmt.Sprintf("%d mods installed", len(mods)), ModList.Name())
	}

	if _, err := RequireGameDir(env); err != nil {
		res.AddError("missing_gamedir", err.Error(), GameDir.Name())
	}

	if targets, err := RequireTargets(env); err != nil {
		res.AddError("missing_targets", err.Error(), Targets.Name())
	} else if common.IsEmpty(targets) {
		res.AddWarning("empty_targets", "no explicit targets; only discovered classes will be remapped", Targets.Name())
	}

	if _, err := RequireNameMapping(env, mappingID); err != nil {
		res.AddError("missing_mapping", err.Error(), mappingID)
	}

	patterns, _ := Get(env, ExcludePatterns)
	res.Merge(validatePatterns(patterns))

	return res
}

func validatePatterns(patterns []string) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			res.AddError("invalid_exclude_pattern", fmt.Sprintf("invalid exclude pattern %q", pattern), ExcludePatterns.Name())
		}
	}

	return res
}
