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


package retrieval

import (
	"strings"
	"unicode/utf8"
)

// minParagraphRunes filters out headings, separators and stray fragments
// when splitting a markdown report into indexable paragraphs.
const minParagraphRunes = 50

// SplitParagraphs cuts markdown content on blank lines and keeps only
// paragraphs of at least minParagraphRunes runes after trimming.
func SplitParagraphs(content string) []string {
	var paragraphs []string
	for _, chunk := range strings.Split(content, "\n\n") {
		p := strings.TrimSpace(chunk)
		if utf8.RuneCountInString(p) >= minParagraphRunes {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Tokenize lowercases text and splits it on whitespace. Both indexing and
// querying must use the same tokenization or scores are meaningless.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
