package write

import "context"

// Writer is the mutation surface of the host. Every operation is
// deferred: the host applies it to the graph and resolves afterwards.
type Writer interface {
	CreateBlock(ctx context.Context, args CreateBlockArgs) error
	UpdateBlock(ctx context.Context, args UpdateBlockArgs) error
	MoveBlock(ctx context.Context, args MoveBlockArgs) error
	DeleteBlock(ctx context.Context, args DeleteBlockArgs) error
	ReorderBlocks(ctx context.Context, args ReorderBlocksArgs) error

	CreatePage(ctx context.Context, args CreatePageArgs) error
	UpdatePage(ctx context.Context, args UpdatePageArgs) error
	DeletePage(ctx context.Context, args DeletePageArgs) error

	UpsertUser(ctx context.Context, args UpsertUserArgs) error

	// Undo reverts the latest mutation batch, Redo re-applies it. Both
	// operate on the host's own history; the contract carries no state.
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
}
