// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package sqlstore

import "strings"

// RefusalMessage is returned verbatim for any statement that is not a
// SELECT. User-facing, in Portuguese.
const RefusalMessage = "Erro: Apenas queries SELECT são permitidas por segurança."

// IsSelect reports whether the statement, after leading whitespace is
// stripped, begins with the SELECT keyword. The comparison is
// case-insensitive. This is the only statement shape the store executes;
// the database handle itself is opened read-only as a second layer.
func IsSelect(query string) bool {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < len("SELECT") {
		return false
	}
	return strings.EqualFold(trimmed[:len("SELECT")], "SELECT")
}
