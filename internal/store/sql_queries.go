package store

// Static statements. Queries with optional or range predicates are built with
// squirrel next to the repository that runs them.
const (
	createUser = `INSERT INTO users (email, hashed_password, salt, active)
	VALUES ($1, $2, $3, $4)
	RETURNING id, email, active, created_at;`

	existsUserWithEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	findUserByEmail = `SELECT id, email, COALESCE(hashed_password, ''), COALESCE(salt, ''), active, created_at
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT id, email, COALESCE(hashed_password, ''), COALESCE(salt, ''), active, created_at
	FROM users
	WHERE id = $1;`

	activateUser = `UPDATE users SET active = TRUE WHERE id = $1;`

	isUserActive = `SELECT active FROM users WHERE id = $1;`

	createActivationToken = `INSERT INTO activation_tokens (user_id, token, expires)
	VALUES ($1, $2, $3)
	RETURNING id;`

	getActivationToken = `SELECT id, user_id, token, expires
	FROM activation_tokens
	WHERE token = $1;`

	removeActivationToken = `DELETE FROM activation_tokens WHERE id = $1;`

	findFederatedCredential = `SELECT id, user_id, provider, provider_user_id
	FROM federated_credentials
	WHERE provider = $1 AND provider_user_id = $2;`

	createFederatedCredential = `INSERT INTO federated_credentials (user_id, provider, provider_user_id)
	VALUES ($1, $2, $3);`
)
