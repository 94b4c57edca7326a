// Command rekorddump is a thin inspection collaborator over the pdb, anlz
// and setting codecs: it opens one file, calls the matching package's Read,
// and formats the returned value tree. It never parses binary data itself.
package main

func main() {
	execute()
}
