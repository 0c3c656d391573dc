package sqlite

// Schema creates the auth tables. Safe to apply on every start.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS social_accounts (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	provider TEXT NOT NULL,
	uid TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	UNIQUE (provider, uid),
	UNIQUE (user_id, provider)
);

CREATE TABLE IF NOT EXISTS social_tokens (
	id TEXT PRIMARY KEY,
	account_id TEXT NOT NULL UNIQUE REFERENCES social_accounts(id) ON DELETE CASCADE,
	token TEXT NOT NULL,
	token_secret TEXT NOT NULL DEFAULT '',
	expires_at DATETIME,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS auth_tokens (
	token_key TEXT PRIMARY KEY,
	user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL
);
`
