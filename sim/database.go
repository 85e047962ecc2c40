package sim

// Database is the authoritative KV store (spec §3 "Database State", §4.6).
// version_counter is strictly increasing and never reused; it totally
// orders writes.
type Database struct {
	id             string
	network        *Network
	data           map[string]dbRow
	versionCounter int64
	subscribers    []AgentHandle
}

type dbRow struct {
	value   string
	version int64
}

// NewDatabase builds an empty database. Call Seed to pre-populate the
// key_space (spec §6 "key_space").
func NewDatabase(id string, network *Network) *Database {
	return &Database{id: id, network: network, data: make(map[string]dbRow)}
}

func (d *Database) ID() string   { return d.id }
func (d *Database) Active() bool { return true }
func (d *Database) Kind() Kind   { return KindDatabase }

// Seed pre-populates key_1..key_n at version 1, as the driver does at
// simulation init (spec §4.13). The version counter still advances once
// per seeded key, so the first WRITE gets a version above every seeded one.
func (d *Database) Seed(n int) {
	for i := 1; i <= n; i++ {
		key := keyName(i)
		d.versionCounter++
		d.data[key] = dbRow{value: "seed_value_" + key, version: 1}
	}
}

// Subscribe registers a cache node to receive INVALIDATE broadcasts on
// write (spec §4.6, §4.13 "Register all cache nodes as database
// subscribers").
func (d *Database) Subscribe(node AgentHandle) {
	d.subscribers = append(d.subscribers, node)
}

// Handle implements AgentHandle. WRITE increments the version counter,
// stores the new value, and best-effort-broadcasts INVALIDATE to every
// subscriber; READ_DB replies with the current value if the key is
// known, and is otherwise silently dropped (spec §4.6, §7 "Missing key at
// database" — the requester's pending slot lingers, a documented
// limitation, §9(b)).
func (d *Database) Handle(e *Engine, msg Message) {
	switch msg.Payload.Type {
	case PayloadWrite:
		key := msg.Payload.Key
		d.versionCounter++
		d.data[key] = dbRow{value: msg.Payload.Value, version: d.versionCounter}
		for _, node := range d.subscribers {
			d.network.Send(e, NewMessage(d, node, Payload{
				Type:    PayloadInvalidate,
				Key:     key,
				Version: d.versionCounter,
			}))
		}
	case PayloadReadDB:
		key := msg.Payload.Key
		row, ok := d.data[key]
		if !ok {
			return
		}
		d.network.Send(e, NewMessage(d, msg.Src, Payload{
			Type:    PayloadReadResponse,
			Key:     key,
			Value:   row.value,
			Version: row.version,
		}))
	}
}
