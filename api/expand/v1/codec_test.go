package expandv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	expandv1 "go.mexp.dev/mexpd/api/expand/v1"
	"go.mexp.dev/mexpd/tt"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(expandv1.CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, expandv1.CodecName, codec.Name())
}

func TestCodecRoundTripsRequests(t *testing.T) {
	codec := encoding.GetCodec(expandv1.CodecName)
	require.NotNil(t, codec)

	input := tt.Flatten(tt.Group("(", tt.Ident("x"), tt.Punct(","), tt.Literal("1")))

	in := &expandv1.ExpandRequest{
		Path:    "/lib/example.so",
		Macro:   "derive_debug",
		Input:   input,
		Env:     map[string]string{"CARGO_MANIFEST_DIR": "/src/example"},
		WorkDir: "/src/example",
	}

	data, err := codec.Marshal(in)
	require.NoError(t, err)

	out := &expandv1.ExpandRequest{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, in, out)
}
