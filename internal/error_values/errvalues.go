package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNoUserContext    = errors.New("no authenticated user in context")
	ErrValidation       = errors.New("validation error")

	ErrStatisticsNotFound = errors.New("statistics for user not found")
	ErrStatisticsExist    = errors.New("statistics for user already exist")
	ErrInvalidDailyGoal   = errors.New("daily goal must be greater than 0")

	ErrUnknownMetric         = errors.New("unknown achievement metric")
	ErrInvalidDefinition     = errors.New("invalid achievement definition")
	ErrDuplicatedAchievement = errors.New("achievement id declared twice")
)
