package config

const (
	// MaxDocumentTitleLength is the maximum length for document titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxDocumentTitleLength = 255

	// MaxPileNameLength is the maximum length for flashcard pile names.
	MaxPileNameLength = 255

	// MaxFolderNameLength is the maximum length for folder names.
	// Same as pile names for consistency.
	MaxFolderNameLength = 255

	// MaxTodoTextLength is the maximum length for a todo item.
	MaxTodoTextLength = 1000

	// MaxCardsPerPile bounds a single pile. A pile's cards are stored as one
	// JSONB value, so the row must stay comfortably inside normal row limits.
	MaxCardsPerPile = 500

	// MaxCardSideLength is the maximum length for one side of a card.
	MaxCardSideLength = 2000

	// MaxUploadBytes is the maximum accepted image upload size.
	MaxUploadBytes = 5 << 20

	// MaxWeeklyGoal is the largest allowed weekly study goal (days per week).
	MaxWeeklyGoal = 7
)
