package glapp

// UniformCache caches uniform locations of one linked program so that each
// name is resolved by the driver at most once.
//
// Only successful lookups are stored; a name the program does not declare is
// queried again on the next call. Locations are stable for the lifetime of a
// linked program, so the cache is only invalidated by Reset.
type UniformCache struct {
	gl        GL
	program   uint32
	locations map[string]int32
}

// NewUniformCache creates an empty cache for program.
func NewUniformCache(gl GL, program uint32) *UniformCache {
	return &UniformCache{
		gl:        gl,
		program:   program,
		locations: make(map[string]int32),
	}
}

// Location returns the location of the named uniform and whether it exists.
func (c *UniformCache) Location(name string) (int32, bool) {
	if loc, ok := c.locations[name]; ok {
		return loc, true
	}
	if c.program == 0 {
		return -1, false
	}

	loc := c.gl.GetUniformLocation(c.program, name)
	if loc < 0 {
		return -1, false
	}
	c.locations[name] = loc
	return loc, true
}

// Len returns the number of cached locations.
func (c *UniformCache) Len() int {
	return len(c.locations)
}

// Reset drops every cached location and binds the cache to program.
func (c *UniformCache) Reset(program uint32) {
	c.program = program
	clear(c.locations)
}
