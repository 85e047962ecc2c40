package sim

import "strconv"

// keyName formats the key-space naming convention used by both the
// database seeder and the client's key draws: "key_<n>" (spec §4.10,
// §4.13).
func keyName(n int) string { return "key_" + strconv.Itoa(n) }
