package normalize

import "golang.org/x/text/transform"

// formTransformer adapts one of the byte-level normalization functions to
// the transform.Transformer interface. Normalization is not incremental --
// reordering and composition can reach arbitrarily far back into the
// buffer -- so the transformer buffers until it sees atEOF and then runs
// the whole form in one pass.
type formTransformer struct {
	form func([]byte) []byte
}

func (formTransformer) Reset() {}

func (t formTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	out := t.form(src)
	if len(dst) < len(out) {
		return 0, 0, transform.ErrShortDst
	}
	return copy(dst, out), len(src), nil
}

// NFDTransformer returns NFD as a transform.Transformer, for
// composing with transform.Chain or use with transform.NewReader/Writer.
func NFDTransformer() transform.Transformer { return formTransformer{NFD} }

// NFCTransformer is the transform.Transformer form of NFC.
func NFCTransformer() transform.Transformer { return formTransformer{NFC} }

// NFKDTransformer is the transform.Transformer form of NFKD.
func NFKDTransformer() transform.Transformer { return formTransformer{NFKD} }

// NFKCTransformer is the transform.Transformer form of NFKC.
func NFKCTransformer() transform.Transformer { return formTransformer{NFKC} }
