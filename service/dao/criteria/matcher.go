package criteria

import (
	"cmp"
	"slices"

	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/dao"
)

// MatchReport reports whether report satisfies every parameter; unknown names are ignored.
func MatchReport(report *model.Report, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		var ok bool
		switch parameter.Name {
		case dao.ParamRunID:
			ok = matchString(report.RunID, parameter.Value)
		case dao.ParamInstance:
			ok = matchString(report.Instance, parameter.Value)
		case dao.ParamVariant:
			ok = matchString(report.Variant, parameter.Value)
		case dao.ParamFailed:
			failed, isBool := parameter.Value.(bool)
			ok = !isBool || failed == report.Failed()
		default:
			ok = true
		}
		if !ok {
			return false
		}
	}
	return true
}

func matchString(actual string, value interface{}) bool {
	switch expect := value.(type) {
	case string:
		return actual == expect
	case []string:
		return slices.Contains(expect, actual)
	}
	return true
}

// SortReports orders reports by start time, then id.
func SortReports(reports []*model.Report) {
	slices.SortFunc(reports, func(a, b *model.Report) int {
		if c := a.StartedAt.Compare(b.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
