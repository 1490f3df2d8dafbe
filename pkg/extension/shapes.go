package extension

import "github.com/dive2Pro/roam-types/pkg/schema"

// Shape names registered by this package.
const (
	ShapeSettingAction      = "extension.setting-action"
	ShapeSettingConfig      = "extension.setting-config"
	ShapePanelConfig        = "extension.panel-config"
	ShapeCommand            = "extension.command"
	ShapeMenuCommand        = "extension.menu-command"
	ShapeBlockContext       = "extension.block-context"
	ShapeMultiSelectContext = "extension.multi-select-context"
	ShapeGraph              = "extension.graph"
	ShapePlatform           = "extension.platform"
)

func init() {
	schema.MustRegister(&schema.Shape{
		Name:         ShapeSettingAction,
		Doc:          "Control variant of a settings panel entry, keyed by the literal type tag.",
		Delivery:     schema.DeliverySync,
		Discriminant: "type",
		Variants: []schema.Variant{
			{Tag: ActionTypeSwitch, Doc: "Toggle bound to a boolean setting.", Fields: []schema.Field{
				{Name: "onChange", Kind: schema.KindCallback},
			}},
			{Tag: ActionTypeInput, Doc: "Single-line free text field.", Fields: []schema.Field{
				{Name: "placeholder", Kind: schema.KindString},
				{Name: "onChange", Kind: schema.KindCallback},
			}},
			{Tag: ActionTypeText, Doc: "Multi-line text area.", Fields: []schema.Field{
				{Name: "placeholder", Kind: schema.KindString},
				{Name: "onChange", Kind: schema.KindCallback},
			}},
			{Tag: ActionTypeNumber, Doc: "Numeric field.", Fields: []schema.Field{
				{Name: "onChange", Kind: schema.KindCallback},
			}},
			{Tag: ActionTypeSelect, Doc: "Single-select over a fixed item list.", Fields: []schema.Field{
				{Name: "items", Kind: schema.KindArray, Required: true},
				{Name: "onChange", Kind: schema.KindCallback},
			}},
			{Tag: ActionTypeButton, Doc: "Button with display text and click handler.", Fields: []schema.Field{
				{Name: "content", Kind: schema.KindString, Required: true},
				{Name: "onClick", Kind: schema.KindCallback, Required: true},
			}},
			{Tag: ActionTypeComponent, Doc: "Caller-supplied custom component.", Fields: []schema.Field{
				{Name: "component", Kind: schema.KindCallback, Required: true},
			}},
		},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeSettingConfig,
		Doc:      "One settings panel entry: identity, display strings, action descriptor.",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: "id", Kind: schema.KindString, Required: true},
			{Name: "name", Kind: schema.KindString, Required: true},
			{Name: "description", Kind: schema.KindString},
			{Name: "action", Kind: schema.KindObject, Required: true},
		},
		Model: SettingConfig{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapePanelConfig,
		Doc:      "Declarative settings panel of an extension.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "tabTitle", Kind: schema.KindString, Required: true},
			{Name: "settings", Kind: schema.KindArray, Required: true},
		},
		Model: PanelConfig{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeCommand,
		Doc:      "Command palette entry; label is the removal key.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "callback", Kind: schema.KindCallback, Required: true},
			{Name: "disable-hotkey", Kind: schema.KindBool},
		},
		Model: Command{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeMenuCommand,
		Doc:      "Context-menu entry; label is the removal key.",
		Delivery: schema.DeliveryDeferred,
		Fields: []schema.Field{
			{Name: "label", Kind: schema.KindString, Required: true},
			{Name: "callback", Kind: schema.KindCallback, Required: true},
		},
		Model: MenuCommand{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeBlockContext,
		Doc:      "Context handed to a block context-menu callback.",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: "block-uid", Kind: schema.KindString, Required: true},
			{Name: "page-uid", Kind: schema.KindString, Required: true},
			{Name: "window-id", Kind: schema.KindString, Required: true},
			{Name: "block-string", Kind: schema.KindString, Required: true},
			{Name: "heading", Kind: schema.KindNumber},
		},
		Model: BlockContext{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeMultiSelectContext,
		Doc:      "Context handed to a multi-select context-menu callback.",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: "block-uids", Kind: schema.KindArray, Required: true},
		},
		Model: MultiSelectContext{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapeGraph,
		Doc:      "Read-only descriptor of the open graph.",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: "name", Kind: schema.KindString, Required: true},
			{Name: "type", Kind: schema.KindString, Required: true, Enum: []string{string(GraphTypeHosted), string(GraphTypeOffline)}},
			{Name: "isEncrypted", Kind: schema.KindBool},
		},
		Model: Graph{},
	})

	schema.MustRegister(&schema.Shape{
		Name:     ShapePlatform,
		Doc:      "Read-only capability flags of the runtime host.",
		Delivery: schema.DeliverySync,
		Fields: []schema.Field{
			{Name: "isDesktop", Kind: schema.KindBool},
			{Name: "isMobile", Kind: schema.KindBool},
			{Name: "isMobileApp", Kind: schema.KindBool},
			{Name: "isTouchDevice", Kind: schema.KindBool},
			{Name: "isIOS", Kind: schema.KindBool},
		},
		Model: Platform{},
	})
}
