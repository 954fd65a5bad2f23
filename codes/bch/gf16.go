package bch

// GF(16) arithmetic using log/antilog tables with the primitive polynomial
// x^4 + x + 1 and generator alpha = x.

var (
	gfExp [30]byte
	gfLog [16]byte
)

func init() {
	x := 1
	for i := 0; i < 15; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = byte(i)
		x <<= 1
		if x&0x10 != 0 {
			x ^= 0x13 // reduce by x^4 + x + 1
		}
	}
	for i := 15; i < 30; i++ {
		gfExp[i] = gfExp[i-15]
	}
}

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

func gfInv(a byte) byte {
	if a == 0 {
		return 0
	}
	return gfExp[(15-int(gfLog[a]))%15]
}

// alphaPow returns alpha^e, with e reduced mod 15.
func alphaPow(e int) byte {
	e %= 15
	if e < 0 {
		e += 15
	}
	return gfExp[e]
}
