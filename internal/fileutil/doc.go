// Package fileutil walks unpacked container filesystems and reports their
// files the way an image archive names them: rooted, slash-separated member
// paths such as "/etc/hosts" or "/.singularity.d/runscript".
//
// ScanRoot is the single entry point:
//
//	result, err := fileutil.ScanRoot("/tmp/rootfs", fileutil.ScanOptions{
//	    ExcludeDirs: []string{"/proc", "/sys", "/dev"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, member := range result.Files {
//	    fmt.Println(member)
//	}
//
// Hidden directories are walked like any other, since images keep their
// metadata under /.singularity.d. Symbolic links are reported as files and
// never followed. Errors on individual entries are collected in
// ScanResult.Errors and the walk continues.
package fileutil
