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


// Package sqlstore executes read-only SQL against the parliamentary
// amendments SQLite database and renders results as markdown tables with
// Brazilian currency formatting.
//
// Execution never propagates backend faults to the caller as errors: every
// outcome, including refusals and malformed SQL, becomes a text payload
// suitable for a tool response.
package sqlstore
