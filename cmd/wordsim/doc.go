// Command wordsim scores word pairs from a two-column file with a
// normalized Levenshtein similarity and a Van Orden orthographic score.
//
//	wordsim score input.csv -o output_wordSim.csv
//	wordsim pair cat cot
//	wordsim config init
package main
