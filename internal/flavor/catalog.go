package flavor

// GlobalOptions returns the options passed to the generator for every flavor,
// ahead of the flavor's own options.
func GlobalOptions() []string {
	return []string{"--werror"}
}

var defaultFlavors = []Flavor{
	{
		Name: "debug",
	},
	{
		Name: "asan",
		Options: []string{
			"-Db_sanitize=address",
			"-Ddocumentation=false",
		},
	},
	{
		Name: "release",
		Options: []string{
			"--buildtype", "release",
			"-Db_ndebug=true",
			"-Ddocumentation=false",
		},
		Env: map[string]string{
			"CFLAGS":   "-ffunction-sections -fdata-sections",
			"CXXFLAGS": "-ffunction-sections -fdata-sections",
			"LDFLAGS":  "-fuse-ld=gold -Wl,--gc-sections,--icf=all",
		},
	},
	{
		Name: "lto",
		Options: []string{
			"--buildtype", "release",
			"-Db_ndebug=true",
			"-Db_lto=true",
			"-Ddocumentation=false",
		},
	},
	{
		Name: "clang",
		Options: []string{
			"-Ddocumentation=false",
		},
		Env: map[string]string{
			"CC":  "clang",
			"CXX": "clang++",
		},
	},
}

// Default returns the compiled-in catalog. It panics if the table above is
// invalid, which the package tests rule out.
func Default() *Catalog {
	c, err := NewCatalog(defaultFlavors...)
	if err != nil {
		panic("flavor: invalid default catalog: " + err.Error())
	}
	return c
}
