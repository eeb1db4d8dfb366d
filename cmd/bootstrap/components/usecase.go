package components

import (
	"tutorhive/internal/usecase"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSlotCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewCategoryCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewTutorQueries,
		queries.NewCategoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
