package serviceImp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"iddss/pkg/export/markdown"
	"iddss/pkg/export/types"
)

// Selection notes are part of the export contract; do not reword them.
const (
	noteAcceptedOnly = "Included activities you marked as accepted."
	noteNonRejected  = "No accepted activities were found; included all non-rejected suggestions."
)

// activityState is the fold target for one activity identifier. Status
// follows the latest accept/reject; edited holds the last valid edit
// payload regardless of the status changes around it.
type activityState struct {
	status types.Status
	edited map[string]any
}

// parseActivityObject decodes an edit payload into an object. Anything
// that is not a JSON object (including malformed text) yields nil.
func parseActivityObject(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// activityIDFromAction resolves which activity an action targets: an `id`
// field inside the edit payload wins, then a comment that is itself an
// activity identifier. Anything else is not reconcilable.
func activityIDFromAction(a types.ActionExport) string {
	if obj := parseActivityObject(a.EditedContent); obj != nil {
		if id, ok := obj["id"].(string); ok && id != "" {
			return id
		}
	}
	c := strings.TrimSpace(a.Comment)
	if strings.HasPrefix(c, "activity-") {
		return c
	}
	return ""
}

// normalizeActivity strips internal fields, pins id and status, and
// plain-texts every display field the renderers consume.
func normalizeActivity(src map[string]any, id string, status types.Status) map[string]any {
	a := make(map[string]any, len(src)+2)
	for k, v := range src {
		a[k] = v
	}
	delete(a, "draft")
	delete(a, "status")
	a["id"] = id
	a["status"] = string(status)

	for _, k := range []string{"title", "type", "description", "duration", "assessment_criteria"} {
		if v, present := a[k]; present {
			a[k] = markdown.Clean(v)
		}
	}
	for _, k := range []string{"objective_alignment", "materials_needed", "instructions"} {
		if v, present := a[k]; present {
			if _, isList := asList(v); isList {
				a[k] = cleanStrings(v)
			}
		}
	}
	if ad, ok := asMap(a["adaptations"]); ok {
		cleaned := make(map[string]any, len(ad))
		for k, v := range ad {
			cleaned[k] = markdown.Clean(v)
		}
		a["adaptations"] = cleaned
	}
	return a
}

// finalActivities merges the latest AI activity suggestions with the
// step's accept/reject/edit history into the exported activity plan.
// Returns nil when the session never reached the activity-suggestion
// phase.
func finalActivities(snap *types.Snapshot) *types.ActivityPlan {
	step := latestStep(snap, types.PhaseActivitySuggestion)
	if step == nil {
		return nil
	}

	var baseList []map[string]any
	var sequenceRationale, totalEstimatedTime string
	if resp, ok := asMap(latestResponse(snap, types.PhaseActivitySuggestion)); ok {
		if items, ok := asList(resp["activities"]); ok {
			for i, item := range items {
				m, ok := asMap(item)
				if !ok {
					continue
				}
				base := make(map[string]any, len(m)+1)
				for k, v := range m {
					base[k] = v
				}
				base["id"] = fmt.Sprintf("activity-%d", i)
				baseList = append(baseList, base)
			}
		}
		sequenceRationale = markdown.Clean(resp["sequence_rationale"])
		totalEstimatedTime = markdown.Clean(resp["total_estimated_time"])
	}

	actions := make([]types.ActionExport, len(step.UserActions))
	copy(actions, step.UserActions)
	sort.SliceStable(actions, func(i, j int) bool {
		return markdown.ParseTime(actions[i].CreatedAt).Before(markdown.ParseTime(actions[j].CreatedAt))
	})

	// Fold actions in chronological order. order keeps first-encounter
	// sequence for identifiers that exist only through actions.
	state := map[string]*activityState{}
	var order []string
	for _, a := range actions {
		id := activityIDFromAction(a)
		if id == "" {
			continue
		}
		entry, ok := state[id]
		if !ok {
			entry = &activityState{status: types.StatusPending}
			state[id] = entry
			order = append(order, id)
		}
		switch types.ParseActionType(strings.TrimSpace(a.ActionType)) {
		case types.ActionReject:
			entry.status = types.StatusRejected
		case types.ActionAccept:
			entry.status = types.StatusAccepted
		case types.ActionEdit:
			if obj := parseActivityObject(a.EditedContent); obj != nil {
				entry.edited = obj
			}
		}
	}

	var merged []map[string]any
	seen := map[string]bool{}
	for _, base := range baseList {
		id := strings.TrimSpace(markdown.Stringify(base["id"]))
		if id == "" {
			continue
		}
		entry, ok := state[id]
		if !ok {
			entry = &activityState{status: types.StatusPending}
		}
		src := base
		if entry.edited != nil {
			src = entry.edited
		}
		merged = append(merged, normalizeActivity(src, id, entry.status))
		seen[id] = true
	}
	// Orphans: edited activities whose identifier never appeared among
	// the suggestions.
	for _, id := range order {
		if seen[id] {
			continue
		}
		entry := state[id]
		if entry.edited != nil {
			merged = append(merged, normalizeActivity(entry.edited, id, entry.status))
		}
	}

	anyAccepted := false
	for _, a := range merged {
		if a["status"] == string(types.StatusAccepted) {
			anyAccepted = true
			break
		}
	}

	final := make([]map[string]any, 0, len(merged))
	note := noteNonRejected
	if anyAccepted {
		note = noteAcceptedOnly
		for _, a := range merged {
			if a["status"] == string(types.StatusAccepted) {
				final = append(final, a)
			}
		}
	} else {
		for _, a := range merged {
			if a["status"] != string(types.StatusRejected) {
				final = append(final, a)
			}
		}
	}

	return &types.ActivityPlan{
		SelectionNote:      note,
		SequenceRationale:  sequenceRationale,
		TotalEstimatedTime: totalEstimatedTime,
		Activities:         final,
	}
}
