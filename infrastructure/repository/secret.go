package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jbapex/planeje-sub002/infrastructure/database/postgres"
	"github.com/jbapex/planeje-sub002/internal/config"
)

// secretRepository lê segredos do vault direto no Postgres do projeto,
// chamando a mesma função que o RPC get_encrypted_secret expõe
type secretRepository struct {
	conn postgres.Queryer
}

func NewSecretRepository(conn postgres.Queryer) config.SecretStore {
	return &secretRepository{
		conn: conn,
	}
}

func buildGetSecretQuery(name string) (string, []any, error) {
	return squirrel.
		Select().
		Column(squirrel.Expr("get_encrypted_secret(?)", name)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *secretRepository) GetSecret(ctx context.Context, name string) (string, error) {
	query, args, err := buildGetSecretQuery(name)
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var secret sql.NullString
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&secret); err != nil {
		if err == sql.ErrNoRows {
			return "", config.ErrSecretNotFound
		}
		return "", fmt.Errorf("erro ao consultar segredo: %w", err)
	}

	if !secret.Valid || secret.String == "" {
		return "", config.ErrSecretNotFound
	}

	return secret.String, nil
}
