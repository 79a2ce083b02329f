package trie

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
)

var deterministic = proto.MarshalOptions{Deterministic: true}

func defaultMarshal(v interface{}) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return deterministic.Marshal(m)
	}
	return json.Marshal(v)
}

func appendLength(buf []byte, n int) []byte {
	var tmpbuf [binary.MaxVarintLen64]byte
	len := binary.PutUvarint(tmpbuf[:], uint64(n))
	return append(buf, tmpbuf[:len]...)
}

func appendBytes(buf []byte, body []byte) []byte {
	buf = appendLength(buf, len(body))
	return append(buf, body...)
}

// encodeNode serializes a node for hashing: its value (type name and
// marshaled bytes), then each child's label and digest in label order.
func encodeNode(n *node, prefix string, marshal func(interface{}) ([]byte, error), childDigest func(label byte, child *node) ([]byte, error)) ([]byte, error) {
	var buf []byte
	if n.hasValue() {
		body, err := marshal(n.value.unbox())
		if err != nil {
			return nil, fmt.Errorf("marshal %s value at %q: %w", n.value.typeName(), prefix, err)
		}
		buf = appendLength(buf, 1)
		buf = appendBytes(buf, []byte(n.value.typeName()))
		buf = appendBytes(buf, body)
	} else {
		buf = appendLength(buf, 0)
	}
	buf = appendLength(buf, len(n.children))
	for _, label := range n.sortedLabels() {
		digest, err := childDigest(label, n.children[label])
		if err != nil {
			return nil, err
		}
		buf = append(buf, label)
		buf = appendBytes(buf, digest)
	}
	return buf, nil
}
