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

package xdr

import "log/slog"

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithStrictPadding specifies whether non-zero padding bytes are rejected. This is enabled by default
func WithStrictPadding(strict bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.strictPadding = strict
	}
}

// WithMaxDepth specifies the maximum nesting depth of recursive values
func WithMaxDepth(depth int) DecoderOptionFunc {
	return func(d *Decoder) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// WithMaxLength caps every variable-length field and array count, in addition to the
// bound declared by the schema. A value of 0 disables the cap
func WithMaxLength(maxLen uint32) DecoderOptionFunc {
	return func(d *Decoder) {
		d.maxLength = maxLen
	}
}

// WithPermissiveUnions specifies whether an unknown union discriminant falls back to the
// first registered arm instead of failing. This is disabled by default
func WithPermissiveUnions(permissive bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.permissiveUnions = permissive
	}
}

// WithUTF8Validation specifies whether decoded strings must be valid UTF-8. This is enabled by default
func WithUTF8Validation(validate bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.validateUTF8 = validate
	}
}

// WithLogger specifies the logger used for decode diagnostics
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}
