package store

const (
	deleteAllLedgerEntries = `DELETE FROM ledger_entries;`

	insertLedgerEntry = `INSERT INTO ledger_entries (
			id,
			code,
			quantity,
			last_seen_at,
			synced,
			position
		) VALUES (?, ?, ?, ?, ?, ?);`

	getAllLedgerEntries = `SELECT id, code, quantity, last_seen_at, synced
		FROM ledger_entries
		ORDER BY position;`
)
