package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS budgets (
    name        TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`
