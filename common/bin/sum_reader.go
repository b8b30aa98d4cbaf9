package bin

import (
	"io"

	"github.com/pkg/errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
)

// SumReader decodes fields in order and keeps the count of bytes read
type SumReader struct {
	sum int64
}

func NewSumReader() *SumReader {
	return &SumReader{}
}

func (sr *SumReader) add(n int64, err error) (int64, error) {
	sr.sum += n
	return sr.sum, err
}

func (sr *SumReader) Uint8(r io.Reader, p *uint8) (int64, error) {
	v, n, err := ReadUint8(r)
	if err == nil {
		*p = v
	}
	return sr.add(n, err)
}

func (sr *SumReader) Uint32(r io.Reader, p *uint32) (int64, error) {
	v, n, err := ReadUint32(r)
	if err == nil {
		*p = v
	}
	return sr.add(n, err)
}

func (sr *SumReader) Uint64(r io.Reader, p *uint64) (int64, error) {
	v, n, err := ReadUint64(r)
	if err == nil {
		*p = v
	}
	return sr.add(n, err)
}

func (sr *SumReader) String(r io.Reader, p *string) (int64, error) {
	v, n, err := ReadString(r)
	if err == nil {
		*p = v
	}
	return sr.add(n, err)
}

// Address reads an address, it fails unless the stored length is an address length
func (sr *SumReader) Address(r io.Reader, p *common.Address) (int64, error) {
	v, n, err := ReadBytes(r)
	if err == nil && len(v) != common.AddressLength {
		err = errors.Wrapf(ErrInvalidLength, "address of %v bytes", len(v))
	}
	if err == nil {
		copy((*p)[:], v)
	}
	return sr.add(n, err)
}

func (sr *SumReader) Amount(r io.Reader, p **amount.Amount) (int64, error) {
	v, n, err := ReadBytes(r)
	if err == nil {
		*p = amount.NewAmountFromBytes(v)
	}
	return sr.add(n, err)
}

// AmountSlice reads the length-prefixed list of amounts
func (sr *SumReader) AmountSlice(r io.Reader, p *[]*amount.Amount) (int64, error) {
	var l uint8
	if _, err := sr.Uint8(r, &l); err != nil {
		return sr.sum, err
	}
	vs := make([]*amount.Amount, l)
	for i := range vs {
		if _, err := sr.Amount(r, &vs[i]); err != nil {
			return sr.sum, err
		}
	}
	*p = vs
	return sr.sum, nil
}

func (sr *SumReader) Sum() int64 {
	return sr.sum
}
