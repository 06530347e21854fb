package workspace

import (
	"bytes"
	"encoding/hex"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"bem-translator/internal/common"
)

// Hash is a 32-byte BLAKE3 content fingerprint.
type Hash [32]byte

// String returns the lowercase hex form of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// digestKey is the BLAKE3 key of the workspace digest domain: the ASCII
// domain name zero-padded to 32 bytes.
var digestKey = [32]byte{
	'b', 'e', 'm', '-', 't', 'r', 'a', 'n', 's', 'l', 'a', 't', 'o', 'r', '.',
	'w', 'o', 'r', 'k', 's', 'p', 'a', 'c', 'e',
}

var encMode cbor.EncMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("workspace: CBOR encoder initialization failed: " + err.Error())
	}
}

// digestRecord is the canonical form of a record: type and name folded,
// trailing unset fields dropped.
type digestRecord struct {
	Type   string   `cbor:"1,keyasint"`
	Name   string   `cbor:"2,keyasint,omitempty"`
	Fields []string `cbor:"3,keyasint,omitempty"`
}

// Digest fingerprints the content of ws independently of record order.
// Two workspaces holding the same records produce the same Hash.
func Digest(ws *Workspace) (Hash, error) {
	encoded := make([][]byte, 0, len(ws.records))

	for _, rec := range ws.records {
		fields := rec.Fields()

		last := len(fields)
		for last > 0 && fields[last-1] == "" {
			last--
		}

		b, err := encMode.Marshal(digestRecord{
			Type:   common.FoldKey(rec.rt.Name),
			Name:   common.FoldKey(rec.name),
			Fields: fields[:last],
		})
		if err != nil {
			return Hash{}, err
		}

		encoded = append(encoded, b)
	}

	slices.SortFunc(encoded, bytes.Compare)

	list, err := encMode.Marshal(encoded)
	if err != nil {
		return Hash{}, err
	}

	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("workspace: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	_, _ = hasher.Write(list)

	var h Hash
	copy(h[:], hasher.Sum(nil))

	return h, nil
}
