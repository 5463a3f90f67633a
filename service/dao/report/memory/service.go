package memory

import (
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/dao"
	"github.com/viant/bookscan/service/dao/criteria"
	"github.com/viant/bookscan/service/dao/store"
)

// Service keeps run reports in memory; it is the default report store.
type Service struct {
	*store.MemoryStore[string, model.Report]
}

var _ dao.Service[string, model.Report] = (*Service)(nil)

func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, model.Report](
			func(r *model.Report) string { return r.ID },
			criteria.MatchReport,
			criteria.SortReports,
		),
	}
}
