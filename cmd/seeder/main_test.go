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


package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/encoding/charmap"
)

func sampleRecord() []string {
	record := make([]string, columnCount)
	record[0] = "202488880001"
	record[1] = "2024"
	record[2] = "Individual"
	record[3] = "3999"
	record[4] = "Maria Souza"
	record[5] = "1"
	record[6] = "Porto Alegre - RS"
	record[7] = "4314902"
	record[8] = "Porto Alegre"
	record[9] = "43"
	record[10] = "RS"
	record[11] = "Sul"
	record[12] = "10"
	record[13] = "Saúde"
	record[14] = "302"
	record[15] = "Assistência Hospitalar"
	record[16] = "5018"
	record[17] = "Atenção Especializada"
	record[18] = "8585"
	record[19] = "Atenção à Saúde da População"
	record[20] = "0001"
	record[21] = "Despesas Diversas"
	record[22] = "1.234.567,89"
	record[23] = "1.000.000,00"
	record[24] = "999.999,99"
	record[25] = "0,00"
	record[26] = ""
	record[27] = "123,45"
	return record
}

func TestConvertRecord(t *testing.T) {
	values, err := convertRecord(sampleRecord())
	require.NoError(t, err)
	require.Len(t, values, columnCount)

	assert.Equal(t, "202488880001", values[0])
	assert.Equal(t, int64(2024), values[1])
	assert.Equal(t, "Maria Souza", values[4])
	assert.Equal(t, 1234567.89, values[22])
	assert.Equal(t, 999999.99, values[24])
	assert.Equal(t, 0.0, values[25])
	assert.Nil(t, values[26])
	assert.Equal(t, 123.45, values[27])
}

func TestConvertRecordInvalidNumber(t *testing.T) {
	record := sampleRecord()
	record[22] = "não é número"

	_, err := convertRecord(record)
	assert.Error(t, err)
}

func TestSeedFromLatin1CSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "emendas.csv")
	dbPath := filepath.Join(dir, "test.db")

	header := make([]string, columnCount)
	for i := range header {
		header[i] = "Coluna"
	}
	row := sampleRecord()
	row[4] = "José Conceição" // exercises the Latin-1 decode path

	var lines []string
	lines = append(lines, joinSemicolon(header), joinSemicolon(row))
	content := lines[0] + "\n" + lines[1] + "\n"

	encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(csvPath, []byte(encoded), 0644))

	count, err := seed(csvPath, dbPath, 1000, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func joinSemicolon(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ";"
		}
		out += f
	}
	return out
}
