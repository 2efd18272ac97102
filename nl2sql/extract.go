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


package nl2sql

import (
	"fmt"
	"regexp"
	"strings"
)

// extractStrategies are tried in order. The first capture wins.
// Strategy 1 prefers a fenced sql block, strategy 2 a terminated SELECT
// statement anywhere in the text, strategy 3 an unterminated trailing SELECT.
var extractStrategies = []*regexp.Regexp{
	regexp.MustCompile("(?is)```sql\\s*(.*?)\\s*```"),
	regexp.MustCompile(`(?is)(SELECT\s.+?;)`),
	regexp.MustCompile(`(?is)(SELECT\s.*)`),
}

// Extract pulls a single SQL statement out of raw model output.
// Models decorate their answers unpredictably (prose, markdown fences,
// trailing chatter), so extraction is tolerant: the first strategy that
// captures anything wins, stray fence markers are stripped, and everything
// after the first statement terminator is discarded.
func Extract(raw string) (string, error) {
	for _, strategy := range extractStrategies {
		m := strategy.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		sql := m[1]
		sql = strings.ReplaceAll(sql, "```", "")
		if i := strings.Index(sql, ";"); i >= 0 {
			sql = sql[:i]
		}
		sql = strings.TrimSpace(sql)
		if sql == "" {
			continue
		}
		return sql, nil
	}
	return "", fmt.Errorf("%w: no SQL statement in model output", ErrExtractionFailed)
}
