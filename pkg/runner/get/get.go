package get

import (
	"context"
	"time"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/store"
)

type Get struct {
	ShowID  bool
	JSON    bool
	Search  string
	Filters query.Filters
	On      *time.Time

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	svc := app.NewService(ctx, n.Persistence)

	visible := query.Visible(svc.Tasks(), n.Search, n.Filters)
	if n.On != nil {
		visible = query.ForDate(visible, *n.On)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.JSON {
		return pp.JSON(visible)
	}

	pp.NewLine()
	switch {
	case n.On != nil:
		pp.TitleWithCount(n.On.Format("January 2, 2006"), len(visible))
	default:
		pp.TitleWithCount("Tasks", len(visible))
	}
	pp.Tasks(visible...)

	return nil
}
