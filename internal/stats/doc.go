// Package stats computes the descriptive statistics and the correlation figures shown
// next to the charts.
//
// Descriptive statistics follow the conventions of a typical data-frame describe():
// sample standard deviation (n-1) and quartiles interpolated linearly between order
// statistics. Correlation is Pearson's r with a two-sided p-value from Student's t
// distribution, and the trend line is an ordinary least-squares fit of degree one.
package stats
