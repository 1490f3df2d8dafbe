package query

import "github.com/dive2Pro/roam-types/pkg/schema"

// Shape names registered by this package.
const (
	ShapeQueryResult = "query.result"
	ShapeEntityRef   = "query.entity-ref"
	ShapePullResult  = "query.pull-result"
)

func enumStrings(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v.(TextAlign)))
	}
	return out
}

func viewStrings(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v.(ViewType)))
	}
	return out
}

func init() {
	schema.MustRegister(&schema.Shape{
		Name:     ShapeEntityRef,
		Doc:      "Lightweight pointer to another record, by internal db id only.",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: ":db/id", Kind: schema.KindNumber, Required: true},
		},
		Model: EntityRef{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeQueryResult,
		Doc:      "One record returned by the string-based query surface.",
		Delivery: schema.DeliveryDeferred,
		Open:     true,
		Fields: []schema.Field{
			{Name: ":db/id", Kind: schema.KindNumber},
			{Name: ":block/uid", Kind: schema.KindString},
			{Name: ":block/string", Kind: schema.KindString},
			{Name: ":node/title", Kind: schema.KindString},
			{Name: ":block/open", Kind: schema.KindBool},
			{Name: ":block/order", Kind: schema.KindNumber},
			{Name: ":block/heading", Kind: schema.KindNumber},
			{Name: ":edit/time", Kind: schema.KindNumber},
			{Name: ":create/time", Kind: schema.KindNumber},
			{Name: ":block/page", Kind: schema.KindObject},
			{Name: ":block/parents", Kind: schema.KindArray},
			{Name: ":block/children", Kind: schema.KindArray},
		},
		Model: QueryResult{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapePullResult,
		Doc:      "Hydrated record returned by pull; block records carry :block/string, page records :node/title.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: ":db/id", Kind: schema.KindNumber, Required: true},
			{Name: ":block/uid", Kind: schema.KindString, Required: true},
			{Name: ":block/string", Kind: schema.KindString},
			{Name: ":node/title", Kind: schema.KindString},
			{Name: ":block/open", Kind: schema.KindBool},
			{Name: ":block/order", Kind: schema.KindNumber},
			{Name: ":block/heading", Kind: schema.KindNumber},
			{Name: ":block/text-align", Kind: schema.KindString, Enum: enumStrings(TextAligns())},
			{Name: ":children/view-type", Kind: schema.KindString, Enum: viewStrings(ViewTypes())},
			{Name: ":edit/time", Kind: schema.KindNumber},
			{Name: ":create/time", Kind: schema.KindNumber},
			{Name: ":block/page", Kind: schema.KindObject},
			{Name: ":block/parents", Kind: schema.KindArray},
			{Name: ":block/children", Kind: schema.KindArray},
			{Name: ":block/refs", Kind: schema.KindArray},
		},
		Model: PullResult{},
	})
}
