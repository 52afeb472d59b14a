package tileset

import (
	"image"
	"reflect"
)

type cacheKey struct {
	src  image.Image
	size TileSize
}

// Cache 按 (源图, 瓦片尺寸) 缓存切分结果
//
// 同一张源图重复获取时返回同一组 *Tile，基于指针身份的操作因此保持稳定。
// 只缓存指针类型的源图（*ebiten.Image、*image.RGBA 等），按指针身份比较；
// 其他源图每次重新切分。
//
// 非线程安全，只能在游戏循环所在的 goroutine 中使用。
type Cache struct {
	entries map[cacheKey][]*Tile
	extract func(image.Image, TileSize) []*Tile
}

// NewCache 创建空缓存
func NewCache() *Cache {
	return &Cache{
		entries: make(map[cacheKey][]*Tile),
		extract: Extract,
	}
}

// Get 返回缓存的切分结果，未命中时调用 Extract 并缓存
func (c *Cache) Get(src image.Image, size TileSize) []*Tile {
	if !cacheable(src) {
		return c.extract(src, size)
	}

	key := cacheKey{src: src, size: size}
	if tiles, ok := c.entries[key]; ok {
		return tiles
	}

	tiles := c.extract(src, size)
	c.entries[key] = tiles
	return tiles
}

// Invalidate 丢弃某张源图的所有缓存项
func (c *Cache) Invalidate(src image.Image) {
	if !cacheable(src) {
		return
	}
	for key := range c.entries {
		if key.src == src {
			delete(c.entries, key)
		}
	}
}

// cacheable 值类型的源图可能带有不可哈希的字段，作为 map 键会 panic
func cacheable(src image.Image) bool {
	if src == nil {
		return false
	}
	return reflect.ValueOf(src).Kind() == reflect.Pointer
}

// Len 返回缓存项数量
func (c *Cache) Len() int {
	return len(c.entries)
}
