// Copyright 2026 Blink Labs Software
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

package cbor

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// DumpStructure decodes arbitrary CBOR and renders it as an indented tree for debugging
func DumpStructure(cborData []byte) (string, error) {
	var tmp any
	if err := DecodeStrict(cborData, &tmp); err != nil {
		return "", err
	}
	var sb strings.Builder
	dumpItem(&sb, tmp, "")
	return sb.String(), nil
}

func dumpItem(sb *strings.Builder, data any, prefix string) {
	switch v := data.(type) {
	case uint64:
		fmt.Fprintf(sb, "%s0x%x (%d),\n", prefix, v, v)
	case int64:
		fmt.Fprintf(sb, "%s%d,\n", prefix, v)
	case []byte:
		fmt.Fprintf(
			sb,
			"%s<bytes> (length %d) %s,\n",
			prefix,
			len(v),
			hex.EncodeToString(v),
		)
	case []any:
		sb.WriteString(prefix + "[\n")
		for _, val := range v {
			dumpItem(sb, val, prefix+"  ")
		}
		sb.WriteString(prefix + "],\n")
	case map[any]any:
		// Keys are sorted by their printed form so the dump is stable
		keys := make([]string, 0, len(v))
		vals := make(map[string]any, len(v))
		for key, val := range v {
			tmpKey := fmt.Sprintf("%#v", key)
			keys = append(keys, tmpKey)
			vals[tmpKey] = val
		}
		sort.Strings(keys)
		sb.WriteString(prefix + "{\n")
		for _, key := range keys {
			sb.WriteString(prefix + "  " + key + " =>\n")
			dumpItem(sb, vals[key], prefix+"    ")
		}
		sb.WriteString(prefix + "},\n")
	default:
		fmt.Fprintf(sb, "%s%#v,\n", prefix, v)
	}
}
