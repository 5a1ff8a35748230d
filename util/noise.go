package util

var noisyDirectoryNames = []string{
	"node_modules",
	"vendor",
	"bower_components",
	"jspm_packages",
	"site-packages",
	"venv",
	".venv",
	"__pycache__",
	".tox",
	".gradle",
	".idea",
	".vscode",
	"target",
	"build",
	"dist",
	"out",
	"bin",
	"obj",
	".git",
}

// NoisyDirectoryExclusionPatterns returns glob patterns for dependency and build output directories
func NoisyDirectoryExclusionPatterns() []string {
	patterns := make([]string, len(noisyDirectoryNames))
	for i, name := range noisyDirectoryNames {
		patterns[i] = "**/" + name + "/**"
	}
	return patterns
}
