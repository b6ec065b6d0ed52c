package autofit

const glyphRows = 5

// glyphs is a 5-row bitmap font; '#' marks a lit pixel.
var glyphs = map[rune][glyphRows]string{
	'A': {".##.", "#..#", "####", "#..#", "#..#"},
	'B': {"###.", "#..#", "###.", "#..#", "###."},
	'C': {".###", "#...", "#...", "#...", ".###"},
	'D': {"###.", "#..#", "#..#", "#..#", "###."},
	'E': {"####", "#...", "###.", "#...", "####"},
	'F': {"####", "#...", "###.", "#...", "#..."},
	'G': {".###", "#...", "#.##", "#..#", ".###"},
	'H': {"#..#", "#..#", "####", "#..#", "#..#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"..##", "...#", "...#", "#..#", ".##."},
	'K': {"#..#", "#.#.", "##..", "#.#.", "#..#"},
	'L': {"#...", "#...", "#...", "#...", "####"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#..#", "##.#", "#.##", "#..#", "#..#"},
	'O': {".##.", "#..#", "#..#", "#..#", ".##."},
	'P': {"###.", "#..#", "###.", "#...", "#..."},
	'Q': {".##.", "#..#", "#..#", "#.##", ".###"},
	'R': {"###.", "#..#", "###.", "#.#.", "#..#"},
	'S': {".###", "#...", ".##.", "...#", "###."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#..#", "#..#", "#..#", "#..#", ".##."},
	'V': {"#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", ".#.#.", "..#..", ".#.#.", "#...#"},
	'Y': {"#...#", ".#.#.", "..#..", "..#..", "..#.."},
	'Z': {"####", "...#", ".##.", "#...", "####"},
	'0': {".##.", "#.##", "##.#", "#..#", ".##."},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###.", "...#", ".##.", "#...", "####"},
	'3': {"###.", "...#", ".##.", "...#", "###."},
	'4': {"#..#", "#..#", "####", "...#", "...#"},
	'5': {"####", "#...", "###.", "...#", "###."},
	'6': {".##.", "#...", "###.", "#..#", ".##."},
	'7': {"####", "...#", "..#.", ".#..", ".#.."},
	'8': {".##.", "#..#", ".##.", "#..#", ".##."},
	'9': {".##.", "#..#", ".###", "...#", ".##."},
	' ': {"...", "...", "...", "...", "..."},
	'.': {".", ".", ".", ".", "#"},
	',': {"..", "..", "..", ".#", "#."},
	'!': {"#", "#", "#", ".", "#"},
	'?': {"###.", "...#", ".##.", "....", ".#.."},
	'-': {"...", "...", "###", "...", "..."},
	':': {".", "#", ".", "#", "."},
	'\'': {"#", "#", ".", ".", "."},
	'&': {".#..", "#.#.", ".#..", "#.#.", ".#.#"},
	'+': {"...", ".#.", "###", ".#.", "..."},
	'/': {"...#", "..#.", ".#..", "#...", "...."},
}
