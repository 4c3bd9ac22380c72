// Package loader builds a frozen core.Store from three CSV tables:
//
//	people.csv   id,name,birth
//	movies.csv   id,title,year
//	stars.csv    person_id,movie_id
//
// Each file starts with a header row; columns are located by header name,
// so extra columns and any column order are accepted. Star rows naming an
// unknown person or movie are skipped and counted, never fatal. People or
// movie rows with an empty or repeated ID are skipped the same way.
package loader
