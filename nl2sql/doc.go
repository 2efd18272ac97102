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


// Package nl2sql turns Portuguese natural-language questions about
// parliamentary amendments into SQL statements.
//
// Two paths feed the same output. A rule-based synthesizer handles
// common aggregation shapes deterministically, with no model call and no
// user text spliced into the SQL. Questions the rules cannot express fall
// back to a completion model, whose raw output passes through a tolerant
// extractor before being returned.
package nl2sql
