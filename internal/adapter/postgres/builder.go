package postgres

import sq "github.com/Masterminds/squirrel"

// Builder renders squirrel statements with pgx's $N placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
