package metrics

// Verdana11 is the advance table for 11px Verdana, the font every badge is
// laid out for. Values are the widths published with the shields badge
// format's own width tables; runes outside printable ASCII take the width of
// "m".
var Verdana11 = &Table{
	name:     "Verdana",
	size:     11,
	fallback: 10.68310546875,
	advances: [lastRune - firstRune + 1]float64{
		3.8671875,      // ' '
		4.326171875,    // !
		5.126953125,    // "
		9.0009765625,   // #
		6.9970703125,   // $
		11.837890625,   // %
		7.7197265625,   // &
		2.9443359375,   // '
		5.4052734375,   // (
		5.4052734375,   // )
		6.9970703125,   // *
		9.0009765625,   // +
		4.00146484375,  // ,
		5.4052734375,   // -
		4.00146484375,  // .
		5.4052734375,   // /
		6.9970703125,   // 0
		6.9970703125,   // 1
		6.9970703125,   // 2
		6.9970703125,   // 3
		6.9970703125,   // 4
		6.9970703125,   // 5
		6.9970703125,   // 6
		6.9970703125,   // 7
		6.9970703125,   // 8
		6.9970703125,   // 9
		5.4052734375,   // :
		5.4052734375,   // ;
		9.0009765625,   // <
		9.0009765625,   // =
		9.0009765625,   // >
		5.99951171875,  // ?
		10.9990234375,  // @
		7.51953125,     // A
		7.541015625,    // B
		7.6806640625,   // C
		8.4755859375,   // D
		6.95556640625,  // E
		6.32177734375,  // F
		8.529296875,    // G
		8.26611328125,  // H
		4.6298828125,   // I
		5.00048828125,  // J
		7.62158203125,  // K
		6.123046875,    // L
		9.2705078125,   // M
		8.228515625,    // N
		8.6474609375,   // O
		6.63330078125,  // P
		8.6474609375,   // Q
		7.6435546875,   // R
		7.51953125,     // S
		6.77294921875,  // T
		8.0478515625,   // U
		7.51953125,     // V
		10.87646484375, // W
		7.53564453125,  // X
		6.77294921875,  // Y
		7.53564453125,  // Z
		5.4052734375,   // [
		5.4052734375,   // \
		5.4052734375,   // ]
		9.0009765625,   // ^
		6.9970703125,   // _
		6.9970703125,   // `
		6.6064453125,   // a
		6.83740234375,  // b
		5.93505859375,  // c
		6.83740234375,  // d
		6.4560546875,   // e
		3.86181640625,  // f
		6.83740234375,  // g
		6.97216796875,  // h
		3.0615234375,   // i
		3.78662109375,  // j
		6.5419921875,   // k
		3.0615234375,   // l
		10.68310546875, // m
		6.97216796875,  // n
		6.67626953125,  // o
		6.83740234375,  // p
		6.83740234375,  // q
		4.69970703125,  // r
		5.7255859375,   // s
		4.32958984375,  // t
		6.97216796875,  // u
		6.5419921875,   // v
		9.0009765625,   // w
		6.5419921875,   // x
		6.5419921875,   // y
		5.6181640625,   // z
		6.9814453125,   // {
		5.4052734375,   // |
		6.9814453125,   // }
		9.0009765625,   // ~
	},
}
