package write

import (
	"github.com/dive2Pro/roam-types/pkg/query"
	"github.com/dive2Pro/roam-types/pkg/schema"
)

// Shape names registered by this package.
const (
	ShapeLocation      = "write.location"
	ShapeCreateBlock   = "write.create-block"
	ShapeUpdateBlock   = "write.update-block"
	ShapeMoveBlock     = "write.move-block"
	ShapeDeleteBlock   = "write.delete-block"
	ShapeReorderBlocks = "write.reorder-blocks"
	ShapeCreatePage    = "write.create-page"
	ShapeUpdatePage    = "write.update-page"
	ShapeDeletePage    = "write.delete-page"
	ShapeUpsertUser    = "write.upsert-user"
)

func textAligns() []string {
	out := make([]string, 0, 4)
	for _, v := range query.TextAligns() {
		out = append(out, string(v.(query.TextAlign)))
	}
	return out
}

func viewTypes() []string {
	out := make([]string, 0, 3)
	for _, v := range query.ViewTypes() {
		out = append(out, string(v.(query.ViewType)))
	}
	return out
}

func blockFields() []schema.Field {
	return []schema.Field{
		{Name: "string", Kind: schema.KindString},
		{Name: "uid", Kind: schema.KindString},
		{Name: "open", Kind: schema.KindBool},
		{Name: "heading", Kind: schema.KindNumber},
		{Name: "text-align", Kind: schema.KindString, Enum: textAligns()},
		{Name: "children-view-type", Kind: schema.KindString, Enum: viewTypes()},
	}
}

func pageFields() []schema.Field {
	return []schema.Field{
		{Name: "title", Kind: schema.KindString},
		{Name: "uid", Kind: schema.KindString},
		{Name: "children-view-type", Kind: schema.KindString, Enum: viewTypes()},
	}
}

func init() {
	schema.MustRegister(&schema.Shape{
		Name:     ShapeLocation,
		Doc:      "Placement descriptor: parent unique key plus sibling order (index or first/last).",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: "parent-uid", Kind: schema.KindString, Required: true},
			{Name: "order", Kind: schema.KindAny, Required: true},
		},
		Model: Location{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeCreateBlock,
		Doc:      "Create a block under a parent. The location descriptor is required.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "location", Kind: schema.KindObject, Required: true},
			{Name: "block", Kind: schema.KindObject, Required: true},
		},
		Model: CreateBlockArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeUpdateBlock,
		Doc:      "Update recognized properties of an existing block.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "block", Kind: schema.KindObject, Required: true},
		},
		Model: UpdateBlockArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeMoveBlock,
		Doc:      "Move an existing block to a new location.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "location", Kind: schema.KindObject, Required: true},
			{Name: "block", Kind: schema.KindObject, Required: true},
		},
		Model: MoveBlockArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeDeleteBlock,
		Doc:      "Delete a block and its descendants.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "block", Kind: schema.KindObject, Required: true},
		},
		Model: DeleteBlockArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeReorderBlocks,
		Doc:      "Rewrite the child order under one parent.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "location", Kind: schema.KindObject, Required: true},
			{Name: "blocks", Kind: schema.KindArray, Required: true},
		},
		Model: ReorderBlocksArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeCreatePage,
		Doc:      "Create a page; title required, uid optional.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "page", Kind: schema.KindObject, Required: true},
		},
		Model: CreatePageArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeUpdatePage,
		Doc:      "Update recognized properties of an existing page.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "page", Kind: schema.KindObject, Required: true},
		},
		Model: UpdatePageArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeDeletePage,
		Doc:      "Delete a page and all blocks it contains.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "page", Kind: schema.KindObject, Required: true},
		},
		Model: DeletePageArgs{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeUpsertUser,
		Doc:      "Create or update a user record.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "user", Kind: schema.KindObject, Required: true},
		},
		Model: UpsertUserArgs{},
	})

	// Recognized block/page property sets, registered as standalone
	// shapes so nested objects can be checked on their own.
	schema.MustRegister(&schema.Shape{
		Name:     "write.block-props",
		Doc:      "Fixed set of recognized block property overrides.",
		Delivery: schema.DeliverySync,
		Fields:   blockFields(),
		Model:    BlockProps{},
	})
	schema.MustRegister(&schema.Shape{
		Name:     "write.page-props",
		Doc:      "Fixed set of recognized page property overrides.",
		Delivery: schema.DeliverySync,
		Fields:   pageFields(),
		Model:    PageProps{},
	})
}
