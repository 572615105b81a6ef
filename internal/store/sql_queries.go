package store

const (
	createDevice = `INSERT INTO devices (device_id, name, secret_hash)
    VALUES ($1, $2, $3)
    RETURNING id, device_id, name, secret_hash, registered_at;`

	findDeviceByDeviceID = `SELECT id, device_id, name, secret_hash, registered_at
    FROM devices
    WHERE device_id = $1;`

	deleteSnapshotEntries = `DELETE FROM ledger_snapshots
		WHERE device_id = $1;`

	getSnapshotEntries = `SELECT entry_id, code, quantity, last_seen_at, stored_at
		FROM ledger_snapshots
		WHERE device_id = $1
		ORDER BY position;`
)
