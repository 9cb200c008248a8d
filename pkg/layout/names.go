// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package layout

import (
	"strings"
	"unicode"
)

// Convert a field name into the suffix used for its accessors.  For example,
// "rx_ready" becomes "RxReady" and "love2" becomes "Love2".
func toPascalCase(name string) string {
	var builder strings.Builder
	//
	for _, w := range splitWords(name) {
		builder.WriteString(camelify(w))
	}
	//
	return builder.String()
}

// Make all letters lowercase, except the first which is capitalised.
func camelify(word string) string {
	runes := []rune(strings.ToLower(word))
	//
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	//
	return string(runes)
}

func splitWords(name string) []string {
	var words []string
	//
	for _, w := range strings.Split(name, "_") {
		if w != "" {
			words = append(words, splitCaseChange(w)...)
		}
	}
	//
	return words
}

// Split a word wherever a lowercase letter is followed by an uppercase one, so
// that "rxReady" gives "rx" and "Ready".
func splitCaseChange(word string) []string {
	var (
		runes = []rune(word)
		words []string
		last  = true
		start int
	)
	//
	for i, r := range runes {
		ith := unicode.IsUpper(r)
		if !last && ith {
			words = append(words, string(runes[start:i]))
			start = i
		}
		//
		last = ith
	}
	//
	return append(words, string(runes[start:]))
}

// Capitalise the first letter of a name.
func toExported(name string) string {
	runes := []rune(name)
	//
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	//
	return string(runes)
}
