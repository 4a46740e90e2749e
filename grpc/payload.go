// Copyright 2026 Martin Feller
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

package grpc

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/mfeller/splitlog"
)

// payloadMarshal keeps payload lines compact and tolerant of partially
// populated messages.
var payloadMarshal = protojson.MarshalOptions{
	AllowPartial:  true,
	UseProtoNames: true,
}

// logPayload logs a single protojson-encoded message at DEBUG level,
// truncated to the configured cap. Non-proto messages are logged by type
// only.
func logPayload(bound *splitlog.Logger, cfg *config, direction string, m any) {
	p, ok := m.(proto.Message)
	if !ok {
		_ = bound.Debug(fmt.Sprintf("payload %s (non-proto %T)", direction, m))
		return
	}

	jsonBytes, err := payloadMarshal.Marshal(p)
	if err != nil {
		_ = bound.Debug(fmt.Sprintf("payload %s %T (marshal error: %v)", direction, p, err))
		return
	}

	payload := string(jsonBytes)
	truncated := ""
	if cfg.maxPayloadSize > 0 && len(payload) > cfg.maxPayloadSize {
		truncated = fmt.Sprintf(" (truncated from %dB)", len(payload))
		payload = payload[:cfg.maxPayloadSize]
	}

	_ = bound.Debug(fmt.Sprintf("payload %s %T%s: %s", direction, p, truncated, payload))
}
