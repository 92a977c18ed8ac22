package mem

import "errors"

// A Storage keeps the data of a simulated memory.
//
// Storage manages its capacity in fixed-size units and allocates a unit only
// when it is first touched, so a large sparse memory stays cheap to model.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a storage object with the given capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	s := new(Storage)

	s.unitSize = 4096
	s.capacity = capacity
	s.data = make(map[uint64][]byte)

	return s
}

// Capacity returns the number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

// UnitSize returns the allocation unit size in bytes.
func (s *Storage) UnitSize() uint64 {
	return s.unitSize
}

func (s *Storage) unit(address uint64) ([]byte, error) {
	if address >= s.capacity {
		return nil, errors.New("accessing an address beyond the storage capacity")
	}

	base, _ := s.splitAddress(address)
	u, ok := s.data[base]
	if !ok {
		u = make([]byte, s.unitSize)
		s.data[base] = u
	}

	return u, nil
}

func (s *Storage) splitAddress(addr uint64) (base, inUnit uint64) {
	inUnit = addr % s.unitSize
	base = addr - inUnit
	return
}

// Read returns length bytes starting at the given address.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	res := make([]byte, length)
	offset := uint64(0)

	for offset < length {
		u, err := s.unit(address + offset)
		if err != nil {
			return nil, err
		}

		_, inUnit := s.splitAddress(address + offset)
		n := min(length-offset, s.unitSize-inUnit)
		copy(res[offset:offset+n], u[inUnit:inUnit+n])
		offset += n
	}

	return res, nil
}

// Write stores the data starting at the given address.
func (s *Storage) Write(address uint64, data []byte) error {
	length := uint64(len(data))
	offset := uint64(0)

	for offset < length {
		u, err := s.unit(address + offset)
		if err != nil {
			return err
		}

		_, inUnit := s.splitAddress(address + offset)
		n := min(length-offset, s.unitSize-inUnit)
		copy(u[inUnit:inUnit+n], data[offset:offset+n])
		offset += n
	}

	return nil
}

// DirectAccess returns the storage unit that holds the given address,
// together with the base address the unit starts at. The returned slice
// aliases the storage and is what a backdoor hands out.
func (s *Storage) DirectAccess(address uint64) ([]byte, uint64, error) {
	u, err := s.unit(address)
	if err != nil {
		return nil, 0, err
	}

	base, _ := s.splitAddress(address)

	return u, base, nil
}
