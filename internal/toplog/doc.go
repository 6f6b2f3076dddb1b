// Package toplog parses the tabular text dumps written by system resource
// monitors such as `top -b` into column-oriented series.
//
// The format is a sequence of snapshots. A line whose first field is not a
// base-10 integer is a header and names the columns of every following data
// line until the next header. A data line starts with an integer sample index
// and its fields are matched to the active header by position. Blank lines are
// ignored.
//
//	  PID USER      PR  NI    VIRT    RES    SHR S  %CPU  %MEM     TIME+ COMMAND
//	 1234 alice     20   0  162532   9412   7168 S   0.7   0.1   0:00.21 server
//
// Cells are kept as tagged values: numbers when they parse as floating point,
// the original token otherwise ("S", "0:00.21", "server" above).
//
// Rows whose length differs from the active header are tolerated: extra
// fields are dropped, header columns without a field receive nothing for that
// row, and rows that precede every header store nothing. Each such row is
// counted in Stats and logged at warn level with its line number.
package toplog
