package bytesize

// Cmp compares s and o and returns -1, 0 or +1. With ignoreSign only the
// magnitudes are compared. Otherwise the order is the numeric one: negative
// sizes sort before zero, zero before positive sizes, and of two negative
// sizes the one with the larger magnitude sorts first.
func (s Size) Cmp(o Size, ignoreSign bool) int {
	if ignoreSign {
		return s.value().CmpAbs(o.value())
	}

	return s.value().Cmp(o.value())
}

// CmpBytes compares s with n bytes. See Cmp.
func (s Size) CmpBytes(n uint64, ignoreSign bool) int {
	return s.Cmp(FromBytes(n, 1), ignoreSign)
}

// Equal returns true if s and o are the same number of bytes.
func (s Size) Equal(o Size) bool {
	return s.Cmp(o, false) == 0
}
